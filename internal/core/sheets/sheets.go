// Package sheets registers the built-in sheet configurations of the
// compliance workbook. Import it for side effects:
//
//	import _ "github.com/JonMunkholm/cumplimiento/internal/core/sheets"
package sheets

import "github.com/JonMunkholm/cumplimiento/internal/core"

// Source-sheet tags.
const (
	LabelEsquemaVigente     = "esquema_vigente"
	LabelPersonalizados18   = "personalizados_18"
	LabelPersonalizados0a3  = "personalizados_0a3"
	LabelPersonalizados4a17 = "personalizados_4a17"
)

// Labels maps each source-sheet tag to its display name.
var Labels = map[string]string{
	LabelEsquemaVigente:     "Esquema Vigente",
	LabelPersonalizados18:   "Personalizados 18+",
	LabelPersonalizados0a3:  "Personalizados 0-3",
	LabelPersonalizados4a17: "Personalizados 4-17",
}

func init() {
	for _, cfg := range Defaults() {
		core.Register(cfg)
	}
}

// Defaults returns the built-in sheet list in extraction order.
func Defaults() []core.SheetConfig {
	return []core.SheetConfig{
		{
			Sheet:            "esquema_vigente",
			SkipRows:         11,
			ComplianceColumn: "esquema_vigente",
			Label:            LabelEsquemaVigente,
		},
		{
			Sheet:            "personalizados_cumple_",
			SkipRows:         8,
			ComplianceColumn: "personalizados_cumple_orden_18",
			Label:            LabelPersonalizados18,
		},
		{
			Sheet:            "personalizados_cumple_1",
			SkipRows:         8,
			ComplianceColumn: "personalizados_cumple_orden_niños_0a3",
			Label:            LabelPersonalizados0a3,
		},
		{
			Sheet:            "personalizados_cumple_2",
			SkipRows:         8,
			ComplianceColumn: "personalizados_cumple_orden_niños_4a17",
			Label:            LabelPersonalizados4a17,
		},
	}
}

// DisplayName returns the display name for a tag, or the tag itself.
func DisplayName(label string) string {
	if name, ok := Labels[label]; ok {
		return name
	}
	return label
}

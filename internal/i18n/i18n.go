package i18n

import "strings"

// Static UI chrome translations. Persisted content (material names, project
// type names, service names) is admin-entered raw text and is never routed
// through here.
//
// Lookup order: requested language, then English, then the key itself. A
// missing mapping degrades to the key rather than failing.

var translations = map[string]map[string]string{
	"en": {
		"simulator.title":               "Get an Estimate in 60 Seconds",
		"simulator.step1_title":         "1. Your Contact Information",
		"simulator.step2_title":         "2. Select Your Project Type",
		"simulator.step3_title":         "3. Enter Dimensions for Your {projectType}",
		"simulator.step4_title":         "4. Choose Your Material",
		"simulator.step5_title":         "5. Your Estimated Quote",
		"simulator.quote_title":         "Project Cost Estimate",
		"simulator.quote_prepared_for":  "Prepared for:",
		"simulator.quote_project_type":  "Project Type",
		"simulator.quote_dimensions":    "Dimensions",
		"simulator.quote_material":      "Material",
		"simulator.quote_estimated_cost": "Estimated Cost:",
		"simulator.quote_disclaimer":    "*This is a preliminary estimate. Final cost may vary based on site conditions, specific features, and local regulations.",
		"simulator.button_start_over":   "Start Over",
		"simulator.button_print":        "Print / Save PDF",
		"simulator.button_whatsapp":     "Finalize on WhatsApp",
		"footer.copyright":              "© {year} DIAMOND Home Improvement. All rights reserved.",
	},
	"es": {
		"simulator.title":               "Obtén un Estimado en 60 Segundos",
		"simulator.step1_title":         "1. Tu Información de Contacto",
		"simulator.step2_title":         "2. Selecciona el Tipo de Proyecto",
		"simulator.step3_title":         "3. Ingresa las Dimensiones de tu {projectType}",
		"simulator.step4_title":         "4. Elige tu Material",
		"simulator.step5_title":         "5. Tu Cotización Estimada",
		"simulator.quote_title":         "Estimado de Costo del Proyecto",
		"simulator.quote_prepared_for":  "Preparado para:",
		"simulator.quote_project_type":  "Tipo de Proyecto",
		"simulator.quote_dimensions":    "Dimensiones",
		"simulator.quote_material":      "Material",
		"simulator.quote_estimated_cost": "Costo Estimado:",
		"simulator.quote_disclaimer":    "*Este es un estimado preliminar. El costo final puede variar según las condiciones del sitio, características específicas y regulaciones locales.",
		"simulator.button_start_over":   "Empezar de Nuevo",
		"simulator.button_print":        "Imprimir / Guardar PDF",
		"simulator.button_whatsapp":     "Finalizar por WhatsApp",
		"footer.copyright":              "© {year} DIAMOND Home Improvement. Todos los derechos reservados.",
	},
}

// Known reports whether lang has a translation table. The language setter
// refuses unknown languages so the persisted preference always resolves.
func Known(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "es"}
}

// T resolves key in lang, substituting {name} placeholders from params.
func T(lang, key string, params map[string]string) string {
	msg, ok := translations[lang][key]
	if !ok {
		msg, ok = translations["en"][key]
	}
	if !ok {
		msg = key
	}
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

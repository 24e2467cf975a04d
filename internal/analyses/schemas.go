package analyses

import "advisorpilot/internal/shared/validation"

var analyzeSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["selectedSoftware"],
	"properties": {
		"industry": {"type": "string"},
		"companySize": {"type": "string"},
		"selectedSoftware": {"type": "array", "items": {"type": "string"}},
		"integrationStatuses": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"properties": {
					"isIntegrated": {"type": "boolean"},
					"availableIntegrations": {"type": "array", "items": {"type": "string"}},
					"activeIntegrations": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"includeInsights": {"type": "boolean"}
	}
}`)

var matrixSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["selectedSoftware"],
	"properties": {
		"selectedSoftware": {"type": "array", "items": {"type": "string"}}
	}
}`)

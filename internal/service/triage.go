package service

import (
	"slices"
	"strings"

	"github.com/gramsathi/gramsathi-api/internal/model"
)

// symptomRule fires when any of its keywords equals one of the submitted
// symptoms after normalisation.
type symptomRule struct {
	keywords   []string
	assessment model.Assessment
}

// triageRules are evaluated in order; the first matching rule wins, so a
// list mentioning both fever and chest pain resolves to the fever advice.
var triageRules = []symptomRule{
	{
		keywords: []string{"fever", "temperature", "hot"},
		assessment: model.Assessment{
			Condition: "Possible Fever",
			Severity:  "Medium",
			Recommendations: []string{
				"Rest and stay hydrated",
				"Monitor temperature regularly",
				"Consult doctor if fever persists or exceeds 102°F",
			},
		},
	},
	{
		keywords: []string{"chest pain", "heart pain", "breathing"},
		assessment: model.Assessment{
			Condition: "Possible Cardiac/Respiratory Issue",
			Severity:  "High",
			Recommendations: []string{
				"Seek immediate medical attention",
				"Call emergency services if severe",
				"Do not ignore chest pain",
			},
			Emergency: true,
		},
	},
	{
		keywords: []string{"headache", "head pain"},
		assessment: model.Assessment{
			Condition: "Headache",
			Severity:  "Low to Medium",
			Recommendations: []string{
				"Rest in a quiet, dark room",
				"Stay hydrated",
				"Consider mild pain relief",
				"Consult doctor if severe or persistent",
			},
		},
	},
}

var generalAssessment = model.Assessment{
	Condition: "General Health Concern",
	Severity:  "Unknown",
	Recommendations: []string{
		"Monitor symptoms closely",
		"Consult healthcare provider for proper diagnosis",
		"Maintain good hygiene and rest",
	},
}

// AssessSymptoms maps a symptom list to canned advice.
func AssessSymptoms(symptoms []string) model.Assessment {
	norm := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		norm = append(norm, strings.ToLower(strings.TrimSpace(s)))
	}
	for _, rule := range triageRules {
		for _, kw := range rule.keywords {
			if slices.Contains(norm, kw) {
				return cloneAssessment(rule.assessment)
			}
		}
	}
	return cloneAssessment(generalAssessment)
}

func cloneAssessment(a model.Assessment) model.Assessment {
	a.Recommendations = slices.Clone(a.Recommendations)
	return a
}

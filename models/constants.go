package models

// HealthConditions lists the recognized health conditions a consumer can
// declare on their profile. Profile updates are validated against this list.
var HealthConditions = []string{
	"Diabetes Mellitus",
	"Hypertension (High Blood Pressure)",
	"Ischemic Heart Disease (Coronary Artery Disease)",
	"Chronic Obstructive Pulmonary Disease (COPD)",
	"Stroke (Cerebrovascular Accident)",
	"Tuberculosis",
	"Dengue Fever",
	"Malaria",
	"Typhoid Fever",
	"Lower Respiratory Infections (like Pneumonia)",
}

func IsValidHealthCondition(condition string) bool {
	for _, c := range HealthConditions {
		if c == condition {
			return true
		}
	}
	return false
}

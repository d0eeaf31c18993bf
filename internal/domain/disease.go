package domain

// DiseaseRecord is one immutable entry of the static disease reference
// catalog. Records are loaded once per process and read-only thereafter.
type DiseaseRecord struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	HomeCare        string `json:"homeCare"`
	Medications     string `json:"medications"`
	Lifestyle       string `json:"lifestyle"`
	WhenToSeeDoctor string `json:"whenToSeeDoctor"`
}

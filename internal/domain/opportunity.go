package domain

// Contract is the engagement type offered with an opportunity.
type Contract string

const (
	ContractPartTime  Contract = "part-time"
	ContractVolunteer Contract = "volunteer"
	ContractFullTime  Contract = "full-time"
)

// Valid reports whether the contract is one of the known values.
func (c Contract) Valid() bool {
	switch c {
	case ContractPartTime, ContractVolunteer, ContractFullTime:
		return true
	}
	return false
}

// Licenses are the coaching qualifications an opportunity can require.
var Licenses = []string{
	"Futsal Coach Level 1",
	"Physical Trainer Level 3",
	"Goalkeeper Coach Level 2 Youth",
	"Goalkeeper License A",
	"Children's sports expert",
	"Further training 2",
	"Diploma D",
	"C basic",
	"UEFA C",
	"B UEFA",
	"B UEFA Youth",
	"UEFA A",
	"UEFA Youth A",
	"UEFA Pro Licence",
}

// ValidLicense reports whether the license is in the known list.
func ValidLicense(license string) bool {
	for _, l := range Licenses {
		if l == license {
			return true
		}
	}
	return false
}

// Opportunity is a coaching position offered by a club.
type Opportunity struct {
	ID          int64    `json:"id,string"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Club        string   `json:"club"`
	License     string   `json:"license"`
	NPA         int      `json:"NPA"`
	Location    string   `json:"location"`
	Contract    Contract `json:"contract,omitempty"`
	CreatedBy   int64    `json:"createdBy,string,omitempty"`
}

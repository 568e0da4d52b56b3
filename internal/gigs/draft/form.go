// Package draft holds the add/edit service form: the in-memory draft of one
// listing and its basic package, tag entry, submit-time validation and the
// create or update calls that follow.
package draft

import "strings"

// WorkType says where the freelancer delivers the service.
type WorkType string

const (
	WorkRemote WorkType = "remote"
	WorkLocal  WorkType = "local"
	WorkHybrid WorkType = "hybrid"
)

// ParseWorkType accepts remote, local or hybrid in any case. Empty means remote.
func ParseWorkType(s string) (WorkType, bool) {
	switch WorkType(strings.ToLower(strings.TrimSpace(s))) {
	case "", WorkRemote:
		return WorkRemote, true
	case WorkLocal:
		return WorkLocal, true
	case WorkHybrid:
		return WorkHybrid, true
	default:
		return "", false
	}
}

// Default package terms, as shown in a fresh form.
const (
	DefaultDeliveryDays  = "7"
	DefaultRevisionCount = "1"
)

// PackageForm is the pricing package embedded in the form. Numeric fields hold raw input.
type PackageForm struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	DeliveryDays  string `json:"deliveryDays"`
	RevisionCount string `json:"revisionCount"`
}

// ServiceForm is the editable draft of a listing. CategoryID is empty when unset.
// Location fields only matter when WorkType is not remote.
type ServiceForm struct {
	Title           string      `json:"title"`
	CategoryID      string      `json:"categoryId"`
	Description     string      `json:"description"`
	Tags            []string    `json:"tags"`
	WorkType        WorkType    `json:"workType"`
	LocationCity    string      `json:"locationCity"`
	LocationCountry string      `json:"locationCountry"`
	ServiceRadiusKm string      `json:"serviceRadiusKm"`
	Package         PackageForm `json:"package"`
}

// NewPackageForm returns an empty package with the default delivery and revision terms.
func NewPackageForm() PackageForm {
	return PackageForm{
		DeliveryDays:  DefaultDeliveryDays,
		RevisionCount: DefaultRevisionCount,
	}
}

// NewServiceForm returns an empty form for a remote service.
func NewServiceForm() ServiceForm {
	return ServiceForm{
		Tags:     []string{},
		WorkType: WorkRemote,
		Package:  NewPackageForm(),
	}
}

// Status is the submit state shown next to the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// LoadState tracks the lookups that prepare the form.
type LoadState string

const (
	LoadIdle    LoadState = "idle"
	LoadLoading LoadState = "loading"
	LoadLoaded  LoadState = "loaded"
	LoadFailed  LoadState = "failed"
)

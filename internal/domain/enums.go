package domain

type Status string

const (
	StatusApproved     Status = "approved"
	StatusPending      Status = "pending"
	StatusUnrecognized Status = ""
)

// Recognized reports whether the status counts toward calendar and
// staffing output. Unrecognized records are dropped, not errored.
func (s Status) Recognized() bool {
	return s == StatusApproved || s == StatusPending
}

type Department string

const (
	DeptBOH Department = "boh"
	DeptFOH Department = "foh"
)

// Other returns the opposite department.
func (d Department) Other() Department {
	if d == DeptBOH {
		return DeptFOH
	}
	return DeptBOH
}

// ValidDepartments is the canonical set of accepted department strings.
var ValidDepartments = map[string]bool{
	"boh": true, "foh": true,
}

type Tier string

const (
	TierFull    Tier = "full"
	TierPart    Tier = "part"
	TierLimited Tier = "limited"
)

// ValidTiers is the canonical set of accepted tier strings.
var ValidTiers = map[string]bool{
	"full": true, "part": true, "limited": true,
}

type Severity string

const (
	SeveritySurplus  Severity = "surplus"
	SeverityTight    Severity = "tight"
	SeverityShort    Severity = "short"
	SeverityCritical Severity = "critical"
)

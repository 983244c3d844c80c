package domain

import "fmt"

// Tier is a named subscription level. The set is closed: anything persisted
// goes through ParseTier at the boundary, so an unknown tier cannot reach
// Limits().
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Unlimited is the sentinel for a tier limit with no ceiling.
const Unlimited = -1

// TierLimits are the static, process-wide ceilings for a tier. PriceEUR is
// informational; checkout itself is handled by a hosted provider.
type TierLimits struct {
	MaxClients   int
	MaxProjects  int
	MaxStorageMB int
	PriceEUR     float64
}

// ParseTier validates a stored or submitted tier name.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierFree, TierPro, TierEnterprise:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown subscription tier %q", s)
}

// Limits returns the ceilings for the tier. The mapping is total over the
// declared constants; anything else falls back to the free tier, the most
// restrictive choice.
func (t Tier) Limits() TierLimits {
	switch t {
	case TierPro:
		return TierLimits{MaxClients: 10, MaxProjects: 20, MaxStorageMB: 500, PriceEUR: 24}
	case TierEnterprise:
		return TierLimits{
			MaxClients:   Unlimited,
			MaxProjects:  Unlimited,
			MaxStorageMB: Unlimited,
			PriceEUR:     49.95,
		}
	default:
		return TierLimits{MaxClients: 3, MaxProjects: 3, MaxStorageMB: 100, PriceEUR: 0}
	}
}

// LimitCheck is the result of evaluating current usage against a tier's
// ceilings, with the usage echoed back for display.
type LimitCheck struct {
	CanAddClient    bool       `json:"can_add_client"`
	CanAddProject   bool       `json:"can_add_project"`
	HasStorageSpace bool       `json:"has_storage_space"`
	ClientsUsed     int        `json:"clients_used"`
	ProjectsUsed    int        `json:"projects_used"`
	StorageUsedMB   int        `json:"storage_used_mb"`
	Limits          TierLimits `json:"-"`
}

// CheckLimits evaluates current usage against the tier's ceilings. Pure: it
// consults no store, callers supply fresh counts. A finite limit blocks at
// exactly the limit (the new item would be the max+1-th); Unlimited always
// passes.
func CheckLimits(tier Tier, currentClients, currentProjects, currentStorageMB int) LimitCheck {
	limits := tier.Limits()

	return LimitCheck{
		CanAddClient:    limits.MaxClients == Unlimited || currentClients < limits.MaxClients,
		CanAddProject:   limits.MaxProjects == Unlimited || currentProjects < limits.MaxProjects,
		HasStorageSpace: limits.MaxStorageMB == Unlimited || currentStorageMB < limits.MaxStorageMB,
		ClientsUsed:     currentClients,
		ProjectsUsed:    currentProjects,
		StorageUsedMB:   currentStorageMB,
		Limits:          limits,
	}
}

// EstimatedMBPerFile is the flat per-file storage assumption used for song
// versions carrying an audio reference. Actual byte accounting would require
// the storage layer to track real sizes; the estimate is deliberate.
const EstimatedMBPerFile = 5

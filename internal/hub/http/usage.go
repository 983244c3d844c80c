package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type UsageHandler struct {
	Usage *service.UsageService
}

// HandleUsage reports the account's usage against its tier ceilings. Counts
// are read fresh on every call.
//
//	@Summary	Get usage and limits
//	@Tags		Usage
//	@Produce	json
//	@Success	200	{object}	hubapi.UsageResponse
//	@Failure	401	{object}	hubapi.ErrorResponse
//	@Router		/v1/usage [get].
func (h *UsageHandler) HandleUsage(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	check, err := h.Usage.Check(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubapi.UsageResponse{
		Tier:            string(user.Tier),
		CanAddClient:    check.CanAddClient,
		CanAddProject:   check.CanAddProject,
		HasStorageSpace: check.HasStorageSpace,
		ClientsUsed:     check.ClientsUsed,
		ProjectsUsed:    check.ProjectsUsed,
		StorageUsedMB:   check.StorageUsedMB,
		Limits: hubapi.TierLimitsResponse{
			MaxClients:   check.Limits.MaxClients,
			MaxProjects:  check.Limits.MaxProjects,
			MaxStorageMB: check.Limits.MaxStorageMB,
			PriceEUR:     check.Limits.PriceEUR,
		},
	})
}

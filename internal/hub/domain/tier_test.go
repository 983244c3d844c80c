package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	for _, valid := range []string{"free", "pro", "enterprise"} {
		tier, err := ParseTier(valid)
		require.NoError(t, err)
		require.Equal(t, Tier(valid), tier)
	}

	for _, invalid := range []string{"", "FREE", "platinum", "pro "} {
		_, err := ParseTier(invalid)
		require.Error(t, err)
	}
}

func TestTierLimits(t *testing.T) {
	free := TierFree.Limits()
	require.Equal(t, 3, free.MaxClients)
	require.Equal(t, 3, free.MaxProjects)
	require.Equal(t, 100, free.MaxStorageMB)

	pro := TierPro.Limits()
	require.Equal(t, 10, pro.MaxClients)
	require.Equal(t, 20, pro.MaxProjects)
	require.Equal(t, 500, pro.MaxStorageMB)

	enterprise := TierEnterprise.Limits()
	require.Equal(t, Unlimited, enterprise.MaxClients)
	require.Equal(t, Unlimited, enterprise.MaxProjects)
	require.Equal(t, Unlimited, enterprise.MaxStorageMB)
}

func TestCheckLimits(t *testing.T) {
	tests := []struct {
		name     string
		tier     Tier
		clients  int
		projects int
		storage  int
		want     [3]bool // canAddClient, canAddProject, hasStorageSpace
	}{
		{"free below limits", TierFree, 2, 2, 50, [3]bool{true, true, true}},
		{"free at client limit", TierFree, 3, 0, 0, [3]bool{false, true, true}},
		{"free at project limit", TierFree, 0, 3, 0, [3]bool{true, false, true}},
		{"free at storage limit", TierFree, 0, 0, 100, [3]bool{true, true, false}},
		{"free over limits", TierFree, 10, 10, 1000, [3]bool{false, false, false}},
		{"free zero usage", TierFree, 0, 0, 0, [3]bool{true, true, true}},
		{"pro one below each limit", TierPro, 9, 19, 499, [3]bool{true, true, true}},
		{"pro at limits", TierPro, 10, 20, 500, [3]bool{false, false, false}},
		{"enterprise huge usage", TierEnterprise, 1_000_000, 1_000_000, 1 << 30, [3]bool{true, true, true}},
		{"enterprise zero usage", TierEnterprise, 0, 0, 0, [3]bool{true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckLimits(tt.tier, tt.clients, tt.projects, tt.storage)

			require.Equal(t, tt.want[0], got.CanAddClient)
			require.Equal(t, tt.want[1], got.CanAddProject)
			require.Equal(t, tt.want[2], got.HasStorageSpace)

			// Usage is echoed back unchanged.
			require.Equal(t, tt.clients, got.ClientsUsed)
			require.Equal(t, tt.projects, got.ProjectsUsed)
			require.Equal(t, tt.storage, got.StorageUsedMB)
		})
	}
}

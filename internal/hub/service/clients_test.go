package service

import (
	"context"
	"testing"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/internal/hub/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestClients(t *testing.T) (*ClientService, *sqlite.Store) {
	t.Helper()
	st := newTestStore(t)
	return &ClientService{Store: st, Usage: &UsageService{Store: st}}, st
}

func TestClientCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	user := seedUser(t, st, "alice@example.com", "password123", domain.TierFree)

	created, err := svc.Create(ctx, user, ClientInput{
		Name:       "  Label Records  ",
		Email:      "Contact@Label.com",
		Phone:      "+49 30 1234",
		ArtistName: "The Band",
	})
	require.NoError(t, err)
	require.Equal(t, "Label Records", created.Name)
	require.Equal(t, "contact@label.com", created.Email)

	got, err := svc.Get(ctx, user.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "The Band", got.ArtistName)
}

func TestClientCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	user := seedUser(t, st, "bob@example.com", "password123", domain.TierFree)

	_, err := svc.Create(ctx, user, ClientInput{Name: "", Email: "x@example.com"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, user, ClientInput{Name: "X", Email: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestClientDuplicateEmailPerOwner(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	user := seedUser(t, st, "carol@example.com", "password123", domain.TierFree)
	other := seedUser(t, st, "dave@example.com", "password123", domain.TierFree)

	_, err := svc.Create(ctx, user, ClientInput{Name: "First", Email: "shared@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, user, ClientInput{Name: "Second", Email: "shared@example.com"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// The same address is fine under a different owner.
	_, err = svc.Create(ctx, other, ClientInput{Name: "Third", Email: "shared@example.com"})
	require.NoError(t, err)
}

func TestClientOwnerScoping(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	owner := seedUser(t, st, "erin@example.com", "password123", domain.TierFree)
	intruder := seedUser(t, st, "frank@example.com", "password123", domain.TierFree)

	client, err := svc.Create(ctx, owner, ClientInput{Name: "Mine", Email: "mine@example.com"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, intruder.ID, client.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Update(ctx, intruder.ID, client.ID, ClientInput{Name: "Stolen", Email: "mine@example.com"})
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, intruder.ID, client.ID), store.ErrNotFound)

	// Still intact for the owner.
	got, err := svc.Get(ctx, owner.ID, client.ID)
	require.NoError(t, err)
	require.Equal(t, "Mine", got.Name)
}

func TestClientUpdate(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	user := seedUser(t, st, "grace@example.com", "password123", domain.TierFree)

	client, err := svc.Create(ctx, user, ClientInput{Name: "Old Name", Email: "c@example.com"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user.ID, client.ID, ClientInput{
		Name:  "New Name",
		Email: "c@example.com",
		Phone: "+1 555 0100",
	})
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, "+1 555 0100", updated.Phone)
}

func TestClientDeleteCascades(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	user := seedUser(t, st, "heidi@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	require.NoError(t, svc.Delete(ctx, user.ID, client.ID))

	_, err := st.Projects().GetProject(ctx, user.ID, project.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientList(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestClients(t)

	user := seedUser(t, st, "ivan@example.com", "password123", domain.TierPro)
	seedClient(t, st, user.ID, "a@example.com")
	seedClient(t, st, user.ID, "b@example.com")

	list, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

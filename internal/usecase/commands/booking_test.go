//go:build unit

package commands_test

import (
	"context"
	"testing"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/ptr"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/tests/common/builder"
	commandsmock "consultation-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdminCommands(t *testing.T) (commands.BookingAdminCommands, *commandsmock.MockBookingRepository) {
	repo := commandsmock.NewMockBookingRepository(gomock.NewController(t))
	return commands.NewBookingAdminCommands(repo), repo
}

func TestBookingAdmin_Update(t *testing.T) {
	id := uuid.New()

	t.Run("maps input to changes", func(t *testing.T) {
		cmds, repo := newAdminCommands(t)
		stored := builder.NewBookingBuilder().BuildStored()
		repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, ch booking.Changes) (*booking.Booking, error) {
				require.NotNil(t, ch.MeetLink)
				assert.Equal(t, "https://meet.google.com/new-link-xyz", ch.MeetLink.String())
				require.NotNil(t, ch.Company)
				assert.Equal(t, "", *ch.Company)
				assert.Nil(t, ch.Experience)
				return stored, nil
			})

		got, err := cmds.Update(context.Background(), id, commands.UpdateBookingInput{
			MeetLink: ptr.Of("https://meet.google.com/new-link-xyz"),
			Company:  ptr.Of(""),
		})
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	testCases := []struct {
		name string
		in   commands.UpdateBookingInput
	}{
		{name: "empty", in: commands.UpdateBookingInput{}},
		{name: "bad meet link", in: commands.UpdateBookingInput{MeetLink: ptr.Of("meet")}},
		{name: "bad experience", in: commands.UpdateBookingInput{Experience: ptr.Of("Guru")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmds, _ := newAdminCommands(t)
			_, err := cmds.Update(context.Background(), id, tc.in)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}

	t.Run("not found", func(t *testing.T) {
		cmds, repo := newAdminCommands(t)
		repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, infra.WrapRepoErr("update", nil, infra.KindNotFound))
		_, err := cmds.Update(context.Background(), id, commands.UpdateBookingInput{Experience: ptr.Of("")})
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})
}

func TestBookingAdmin_Delete(t *testing.T) {
	id := uuid.New()

	cmds, repo := newAdminCommands(t)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	require.NoError(t, cmds.Delete(context.Background(), id))

	cmds, repo = newAdminCommands(t)
	repo.EXPECT().Delete(gomock.Any(), id).Return(infra.WrapRepoErr("delete", nil, infra.KindNotFound))
	assert.True(t, errs.Is(cmds.Delete(context.Background(), id), errs.ErrBookingNotFound))

	cmds, repo = newAdminCommands(t)
	repo.EXPECT().Delete(gomock.Any(), id).Return(infra.WrapRepoErr("delete", nil, infra.KindSchemaMissing))
	assert.True(t, errs.Is(cmds.Delete(context.Background(), id), errs.ErrSchemaMissing))
}

func TestBookingAdmin_Seed(t *testing.T) {
	cmds, repo := newAdminCommands(t)
	in := []*booking.Booking{builder.NewBookingBuilder().BuildStored(), builder.NewBookingBuilder().BuildStored()}
	repo.EXPECT().InsertBatch(gomock.Any(), in).Return(in, nil)

	out, err := cmds.Seed(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

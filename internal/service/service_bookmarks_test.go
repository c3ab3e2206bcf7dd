package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/app"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/mock"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBookmarkSvc(t *testing.T, session AuthState) (BookmarkService, *mock.MockBookmarkAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkAdapter(ctrl)

	return NewBookmarkService(bookmarks, session, validators.NewRequestValidator(), logger.Nop()), bookmarks
}

func TestBookmarkService_RequiresSignIn(t *testing.T) {
	svc, _ := newTestBookmarkSvc(t, anonymous())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)
	_, err = svc.Add(ctx, models.KindPaper, "p-1", "")
	assert.ErrorIs(t, err, ErrNotSignedIn)
	_, err = svc.Toggle(ctx, models.KindPaper, "p-1")
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.ErrorIs(t, svc.RemoveByID(ctx, "b-1"), ErrNotSignedIn)
}

func TestBookmarkService_Add_DefaultCategory(t *testing.T) {
	svc, bookmarks := newTestBookmarkSvc(t, signedIn(student))

	bookmarks.EXPECT().AddBookmark(gomock.Any(), models.BookmarkRequest{
		ResourceType: models.KindNote, ResourceID: "n-1", Category: models.DefaultBookmarkCategory,
	}).Return(models.Bookmark{ID: "b-1", ResourceType: models.KindNote, ResourceID: "n-1"}, nil)

	b, err := svc.Add(context.Background(), models.KindNote, " n-1 ", "  ")
	require.NoError(t, err)
	assert.Equal(t, "b-1", b.ID)
}

func TestBookmarkService_Add_InvalidKind(t *testing.T) {
	svc, _ := newTestBookmarkSvc(t, signedIn(student))

	_, err := svc.Add(context.Background(), models.ResourceKind("video"), "v-1", "")
	require.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.Contains(t, err.Error(), "resource_type")
}

func TestBookmarkService_Toggle(t *testing.T) {
	t.Run("adds missing", func(t *testing.T) {
		svc, bookmarks := newTestBookmarkSvc(t, signedIn(student))

		gomock.InOrder(
			bookmarks.EXPECT().CheckBookmark(gomock.Any(), models.KindPaper, "p-1").Return(models.BookmarkStatus{}, nil),
			bookmarks.EXPECT().AddBookmark(gomock.Any(), gomock.Any()).Return(models.Bookmark{ID: "b-1"}, nil),
		)

		on, err := svc.Toggle(context.Background(), models.KindPaper, "p-1")
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("removes present", func(t *testing.T) {
		svc, bookmarks := newTestBookmarkSvc(t, signedIn(student))

		gomock.InOrder(
			bookmarks.EXPECT().CheckBookmark(gomock.Any(), models.KindPaper, "p-1").
				Return(models.BookmarkStatus{Bookmarked: true, BookmarkID: "b-1"}, nil),
			bookmarks.EXPECT().RemoveBookmark(gomock.Any(), models.KindPaper, "p-1").Return(nil),
		)

		on, err := svc.Toggle(context.Background(), models.KindPaper, "p-1")
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("remove fails", func(t *testing.T) {
		svc, bookmarks := newTestBookmarkSvc(t, signedIn(student))

		bookmarks.EXPECT().CheckBookmark(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.BookmarkStatus{Bookmarked: true}, nil)
		bookmarks.EXPECT().RemoveBookmark(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backendErr(adapter.ErrNotFound, app.MsgBookmarkNotFound))

		on, err := svc.Toggle(context.Background(), models.KindPaper, "p-1")
		require.ErrorIs(t, err, ErrBookmarkNotFound)
		assert.True(t, on)
	})
}

func TestBookmarkService_RemoveByID(t *testing.T) {
	svc, bookmarks := newTestBookmarkSvc(t, signedIn(student))

	bookmarks.EXPECT().RemoveBookmarkByID(gomock.Any(), "b-9").
		Return(backendErr(adapter.ErrForbidden, app.MsgNotBookmarkOwner))

	assert.ErrorIs(t, svc.RemoveByID(context.Background(), "b-9"), ErrPermissionDenied)
	assert.ErrorIs(t, svc.RemoveByID(context.Background(), ""), validators.ErrInvalidInput)
}

func TestBookmarkService_List_TransportError(t *testing.T) {
	session := signedIn(student)
	svc, bookmarks := newTestBookmarkSvc(t, session)
	transport := errors.New("connection refused")

	bookmarks.EXPECT().ListBookmarks(gomock.Any()).Return(nil, transport)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, transport)
	assert.Zero(t, session.invalidated)
}

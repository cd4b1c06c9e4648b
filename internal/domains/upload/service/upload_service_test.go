package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	artistmodel "gallery-backend/internal/domains/artist/model"
	"gallery-backend/internal/domains/upload/model"
)

type recordingStore struct {
	uploads  map[string][]byte
	deleted  []string
	presigns []string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{uploads: make(map[string][]byte)}
}

func (s *recordingStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.uploads[key] = data
	return "https://cdn.test/" + key, nil
}

func (s *recordingStore) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.uploads, key)
	return nil
}

func (s *recordingStore) PresignedPutURL(_ context.Context, key string, _ time.Duration) (string, error) {
	s.presigns = append(s.presigns, key)
	return "https://cdn.test/presigned/" + key, nil
}

func (s *recordingStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type passthroughThumbs struct{ fail bool }

func (t passthroughThumbs) Thumbnail(data []byte) ([]byte, error) {
	if t.fail {
		return nil, errors.New("decode failed")
	}
	return data[:1], nil
}

type stubAppender struct {
	artworks []string
	err      error
}

func (a *stubAppender) AppendArtwork(_ context.Context, slug string, url string) (*artistmodel.Artist, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.artworks = append(a.artworks, url)
	return &artistmodel.Artist{Slug: slug, Artworks: a.artworks}, nil
}

const maxSize = 10 << 20

func newService(store *recordingStore, appender *stubAppender) ServiceInterface {
	return NewUploadService(store, passthroughThumbs{}, appender, maxSize, 30*time.Minute)
}

func TestUploadImageRejectsDisallowedContentType(t *testing.T) {
	store := newRecordingStore()
	svc := newService(store, &stubAppender{})

	for _, ct := range []string{"image/svg+xml", "application/pdf", "text/html", ""} {
		_, err := svc.UploadImage(context.Background(), &model.UploadRequest{
			FileName:    "x.bin",
			ContentType: ct,
			Data:        []byte("payload"),
		})
		assert.ErrorIs(t, err, model.ErrUnsupportedContentType, ct)
	}

	assert.Empty(t, store.uploads, "rejected files must never reach storage")
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	store := newRecordingStore()
	svc := newService(store, &stubAppender{})

	_, err := svc.UploadImage(context.Background(), &model.UploadRequest{
		FileName:    "big.jpg",
		ContentType: "image/jpeg",
		Data:        make([]byte, maxSize+1),
	})
	assert.ErrorIs(t, err, model.ErrFileTooLarge)
	assert.Empty(t, store.uploads)
}

func TestUploadImageStoresUnderUploadsPrefix(t *testing.T) {
	store := newRecordingStore()
	svc := newService(store, &stubAppender{})

	result, err := svc.UploadImage(context.Background(), &model.UploadRequest{
		FileName:    "a.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "uploads/"), result.Key)
	assert.True(t, strings.HasSuffix(result.Key, ".png"), result.Key)
	assert.Equal(t, int64(9), result.Size)
	assert.Contains(t, store.uploads, result.Key)
}

func TestUploadArtistArtworkAppendsAndRendersThumbnail(t *testing.T) {
	store := newRecordingStore()
	appender := &stubAppender{}
	svc := newService(store, appender)

	result, err := svc.UploadArtistArtwork(context.Background(), "mark-rothko", &model.UploadRequest{
		FileName:    "no14.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "artists/mark-rothko/"), result.Key)
	assert.NotEmpty(t, result.ThumbnailURL)
	assert.Contains(t, result.ThumbnailURL, "/thumbs/")
	assert.Equal(t, []string{result.URL}, result.Artworks)
	assert.Len(t, store.uploads, 2)
}

func TestUploadArtistArtworkSurvivesThumbnailFailure(t *testing.T) {
	store := newRecordingStore()
	svc := NewUploadService(store, passthroughThumbs{fail: true}, &stubAppender{}, maxSize, 30*time.Minute)

	result, err := svc.UploadArtistArtwork(context.Background(), "mark-rothko", &model.UploadRequest{
		FileName:    "no14.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Empty(t, result.ThumbnailURL)
	assert.Len(t, store.uploads, 1)
}

func TestUploadArtistArtworkRollsBackOnUnknownArtist(t *testing.T) {
	store := newRecordingStore()
	appender := &stubAppender{err: artistmodel.ErrArtistNotFound}
	svc := newService(store, appender)

	_, err := svc.UploadArtistArtwork(context.Background(), "missing", &model.UploadRequest{
		FileName:    "no14.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	assert.ErrorIs(t, err, artistmodel.ErrArtistNotFound)
	assert.NotEmpty(t, store.deleted, "orphaned object must be rolled back")
}

func TestDeleteObjectValidatesKey(t *testing.T) {
	store := newRecordingStore()
	svc := newService(store, &stubAppender{})

	for _, key := range []string{"", "uploads/", "etc/passwd", "uploads/../secrets", "artists/a/../../x"} {
		err := svc.DeleteObject(context.Background(), key)
		assert.ErrorIs(t, err, model.ErrInvalidKey, key)
	}

	require.NoError(t, svc.DeleteObject(context.Background(), "uploads/abc.jpg"))
	assert.Equal(t, []string{"uploads/abc.jpg"}, store.deleted)
}

func TestPresignSanitizesFilename(t *testing.T) {
	store := newRecordingStore()
	svc := newService(store, &stubAppender{})

	result, err := svc.Presign(context.Background(), &model.PresignRequest{
		FileName: "my photo (1)!.jpg",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "uploads/direct/"), result.Key)
	assert.True(t, strings.HasSuffix(result.Key, "-my-photo--1--.jpg"), result.Key)
	assert.Equal(t, "https://cdn.test/presigned/"+result.Key, result.UploadURL)
	assert.Equal(t, "https://cdn.test/"+result.Key, result.FileURL)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), result.ExpiresAt, 5*time.Second)
}

func TestPresignRejectsDisallowedContentType(t *testing.T) {
	svc := newService(newRecordingStore(), &stubAppender{})

	_, err := svc.Presign(context.Background(), &model.PresignRequest{
		FileName: "x.svg",
		FileType: "image/svg+xml",
	})
	assert.ErrorIs(t, err, model.ErrUnsupportedContentType)
}

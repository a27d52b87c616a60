package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocalSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	sink := NewLocalSink(dir)

	loc, err := sink.Put(context.Background(), "2026-01-01.csv", []byte("a,b\n"), "text/csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026-01-01.csv"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	t.Run("Names cannot escape the directory", func(t *testing.T) {
		loc, err := sink.Put(context.Background(), "../../evil.csv", []byte("x"), "text/csv")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "evil.csv"), loc)
	})
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestS3Sink(t *testing.T) {
	client := new(mockS3)
	sink := NewS3Sink(client, "reports-bucket", "candidates/")

	var captured *s3.PutObjectInput
	client.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).
		Return(&s3.PutObjectOutput{}, nil).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*s3.PutObjectInput)
		}).Once()

	loc, err := sink.Put(context.Background(), "r.csv", []byte("a,b\n"), "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "s3://reports-bucket/candidates/r.csv", loc)

	require.NotNil(t, captured)
	assert.Equal(t, "reports-bucket", aws.ToString(captured.Bucket))
	assert.Equal(t, "candidates/r.csv", aws.ToString(captured.Key))
	assert.Equal(t, "text/csv", aws.ToString(captured.ContentType))
	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(body))
	client.AssertExpectations(t)
}

func TestS3SinkError(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := NewS3Sink(client, "b", "").Put(context.Background(), "r.csv", nil, "text/csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

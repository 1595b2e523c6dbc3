package cloudinary

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateImageFile(t *testing.T) {
	require.NoError(t, ValidateImageFile(&multipart.FileHeader{Filename: "shoe.PNG", Size: 1024}))
	require.Error(t, ValidateImageFile(&multipart.FileHeader{Filename: "shoe.pdf", Size: 1024}))
	require.Error(t, ValidateImageFile(&multipart.FileHeader{Filename: "shoe.jpg", Size: MaxImageSize + 1}))
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	_, err := NewService("", "key", "secret", "")
	require.Error(t, err)

	svc, err := NewService("demo", "key", "secret", "")
	require.NoError(t, err)
	require.Equal(t, "storefront", svc.uploadFolder)
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileURL(t *testing.T) {
	c := &Client{cfg: S3Config{
		Bucket:     "resources",
		PublicBase: "https://files.example.org",
	}}

	assert.Equal(t,
		"https://files.example.org/storage/v1/object/public/resources/pdf/abc-report.pdf",
		c.FileURL("pdf/abc-report.pdf"))
	assert.Empty(t, c.FileURL(""))
}

func TestFileURL_NoPublicBase(t *testing.T) {
	c := &Client{cfg: S3Config{Bucket: "resources"}}
	assert.Empty(t, c.FileURL("pdf/abc-report.pdf"))
}

package storage

import (
	"io"
	"net/http"

	"pulse/config"

	"github.com/sirupsen/logrus"
)

// API is what the views need from attachment storage: stream an upload in,
// serve it back, drop it.
type API interface {
	Save(path string, reader io.Reader) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var instance API

func Init() {
	if config.S3_BUCKET != "" {
		instance = NewS3Storage(config.S3_BUCKET)
		logrus.Infof("Attachment storage: S3 bucket %s", config.S3_BUCKET)
		return
	}
	instance = NewDiskStorage(config.MEDIA_DIR)
	logrus.Infof("Attachment storage: %s", config.MEDIA_DIR)
}

func Get() API {
	return instance
}

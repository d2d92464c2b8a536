package storage

import (
	"io"
	"net/http"

	"pulse/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage(bucket string) API {
	awsConfig := aws.Config{
		Region: aws.String(config.S3_REGION),
	}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.S3_KEY != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.S3_KEY, config.S3_SECRET, "")
	}
	return &S3Storage{
		bucket:   bucket,
		s3Client: s3.New(session.Must(session.NewSession(&awsConfig))),
	}
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
		Body:   reader,
	})
	if err != nil {
		return 0, err
	}
	head, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	return aws.Int64Value(head.ContentLength), nil
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		http.NotFound(writer, request)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("Content-Type", *resp.ContentType)
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}

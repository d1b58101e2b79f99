package utils

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage uploads files to an S3-compatible object store. Vehicle photos and
// other subscriber uploads land here.
type Storage struct {
	bucket   string
	region   string
	endpoint string
	access   string
	secret   string
}

func NewStorage(bucket, region, endpoint, accessKey, secretKey string) *Storage {
	return &Storage{
		bucket:   bucket,
		region:   region,
		endpoint: endpoint,
		access:   accessKey,
		secret:   secretKey,
	}
}

func (s *Storage) client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.region),
		Endpoint: aws.String(s.endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.access, s.secret, "",
		),
	}))
	return s3.New(sess)
}

// UploadFile stores the file under folder/fileName and returns its public URL.
// The content type is sniffed from the payload itself.
func (s *Storage) UploadFile(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(detectContentType(file)),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, filePath), nil
}

// detectContentType sniffs the MIME type from the first bytes of the payload.
func detectContentType(file []byte) string {
	return http.DetectContentType(file)
}

// ImageExtension maps the sniffed content type to a file extension. Anything
// unrecognized is treated as JPEG, the dominant camera format.
func ImageExtension(file []byte) string {
	switch detectContentType(file) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

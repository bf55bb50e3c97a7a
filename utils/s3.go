package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/bkiskm0705-stack/nutrition-app/config"
)

var s3Client *s3.Client

// InitS3 sets up the image-hosting client. Image hosting is optional: when
// no bucket is configured, uploads fail softly and meal rows keep an empty
// image_url.
func InitS3() {
	if config.C.AWS.S3Bucket == "" {
		log.Printf("S3_BUCKET not set; meal photo hosting disabled")
		return
	}
	region := config.C.AWS.S3Region
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}
	s3Client = s3.NewFromConfig(cfg)
}

// DecodeBase64Image splits a "data:<mime>;base64,<data>" payload into the
// raw bytes and content type.
func DecodeBase64Image(base64Data string) ([]byte, string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]

	mediaType := strings.SplitN(meta, ":", 2)
	if len(mediaType) != 2 {
		return nil, "", fmt.Errorf("invalid base64 image header")
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0]

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %v", err)
	}
	return data, contentType, nil
}

// UploadBase64Image stores one photo and returns its public URL. The caller
// treats failure as non-fatal: the record is saved with an empty URL.
func UploadBase64Image(base64Data, prefix string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("image hosting not configured")
	}

	imageData, contentType, err := DecodeBase64Image(base64Data)
	if err != nil {
		return "", err
	}

	ext := imageExtension(contentType)
	key := fmt.Sprintf("%s/%s-%d%s", prefix, uuid.NewString(), time.Now().UnixNano(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(config.C.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", config.C.AWS.CloudFrontURL, key), nil
}

func imageExtension(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}

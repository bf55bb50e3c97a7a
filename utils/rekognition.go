package utils

import (
	"context"
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/bkiskm0705-stack/nutrition-app/config"
)

var rekClient *rekognition.Client

// InitRekognition sets up the moderation client. Only called when
// IMAGE_MODERATION is enabled.
func InitRekognition() {
	region := config.C.AWS.S3Region
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("unable to load AWS config for Rekognition: %v", err)
	}
	rekClient = rekognition.NewFromConfig(cfg)
}

// CheckImageSafe runs moderation-label detection on a photo about to be
// hosted. Returns the offending label when the image should be rejected.
// A service error is returned as-is; callers log it and proceed, since
// moderation must never block a meal submission.
func CheckImageSafe(imageData []byte) (bool, string, error) {
	if rekClient == nil {
		return true, "", nil
	}
	out, err := rekClient.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: imageData},
		MinConfidence: ptrFloat32(80),
	})
	if err != nil {
		return true, "", fmt.Errorf("moderation check failed: %v", err)
	}
	for _, label := range out.ModerationLabels {
		if label.Name != nil && *label.Name != "" {
			return false, *label.Name, nil
		}
	}
	return true, "", nil
}

func ptrFloat32(v float32) *float32 { return &v }

package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/bkiskm0705-stack/nutrition-app/config"
)

var sesClient *ses.Client

func sesClientOrNil() *ses.Client {
	if sesClient != nil {
		return sesClient
	}
	if config.C.AWS.SESEmail == "" || config.C.AWS.AdminEmail == "" {
		return nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(config.C.AWS.S3Region))
	if err != nil {
		log.Printf("AWS config load failed, mail disabled: %v", err)
		return nil
	}
	sesClient = ses.NewFromConfig(cfg)
	return sesClient
}

func sendEmail(to string, subject string, body string) error {
	client := sesClientOrNil()
	if client == nil {
		return fmt.Errorf("mail not configured")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(config.C.AWS.SESEmail),
	}

	_, err := client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendCascadeReport mails the administrator when an athlete deletion did
// not complete on every table, so the leftover rows get cleaned up by hand.
func SendCascadeReport(athlete string, report string) error {
	subject := fmt.Sprintf("Incomplete deletion for %s", athlete)
	body := fmt.Sprintf("Cascade delete for %q did not finish:\n\n%s\n\nRe-run the deletion to remove the remaining rows.", athlete, report)
	return sendEmail(config.C.AWS.AdminEmail, subject, body)
}

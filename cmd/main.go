package main

import (
	"fmt"
	"log"

	"github.com/bkiskm0705-stack/nutrition-app/config"
	"github.com/bkiskm0705-stack/nutrition-app/routes"
	"github.com/bkiskm0705-stack/nutrition-app/utils"
)

func main() {
	config.Load()
	if err := config.InitStore(); err != nil {
		log.Fatalf("Failed to init table store: %v", err)
	}
	utils.InitS3()
	if config.C.AWS.Moderation {
		utils.InitRekognition()
	}

	r := routes.SetupRouter()
	r.Run(fmt.Sprintf(":%d", config.C.App.Port))
}

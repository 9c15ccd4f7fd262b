package main

import (
	"os"

	"github.com/nisavid/32health-assmt-claim-process/claims/claimscli"
	"github.com/nisavid/32health-assmt-claim-process/log"
)

func main() {
	if err := claimscli.GetApp().Run(os.Args); err != nil {
		log.API.Fatal(err)
	}
}

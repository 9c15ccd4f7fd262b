package claimscli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli"

	"github.com/nisavid/32health-assmt-claim-process/claims/constants"
	"github.com/nisavid/32health-assmt-claim-process/claims/database"
	"github.com/nisavid/32health-assmt-claim-process/claims/utils"
	"github.com/nisavid/32health-assmt-claim-process/claims/web"
	"github.com/nisavid/32health-assmt-claim-process/log"
)

// App Name and usage.  Edit them here to prevent breaking tests
const Name = "claims"
const Usage = "Claim processing API CLI"

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = constants.Version
	app.Commands = []cli.Command{
		{
			Name:  "start-api",
			Usage: "Start the API",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(app.Writer, "%s\n", "Starting claims API...")

				db := database.GetDbConnection()
				defer db.Close()

				port := utils.GetEnvInt("API_PORT", constants.DefaultAPIPort)
				srv := &http.Server{
					Handler:      web.NewAPIRouter(db),
					Addr:         fmt.Sprintf(":%d", port),
					ReadTimeout:  time.Duration(utils.GetEnvInt("API_READ_TIMEOUT", 10)) * time.Second,
					WriteTimeout: time.Duration(utils.GetEnvInt("API_WRITE_TIMEOUT", 20)) * time.Second,
					IdleTimeout:  time.Duration(utils.GetEnvInt("API_IDLE_TIMEOUT", 120)) * time.Second,
				}

				log.API.Infof("Listening on :%d", port)
				return srv.ListenAndServe()
			},
		},
	}
	return app
}

package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/yizeng/gab/gin/gorm/eventmaster/cmd/app"
)

// @title           EventMaster API
// @version         1.0
// @description     Venues, events and ticket sales.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8000
// @BasePath  /
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

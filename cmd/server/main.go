// @title ethdash API
// @description Ethereum wallet transaction dashboard backend
// @version 1.0
// @BasePath /api
package main

import (
	"github.com/bitplain/ethdash/internal/server"
)

func main() {
	server.Init()
}

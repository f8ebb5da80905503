/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/voxtape/transcript-api/cmd"

// @title           Transcript API
// @version         1.0
// @description     Transcript acquisition for YouTube videos and Instagram posts
// @contact.name    API Support
// @contact.url     https://github.com/voxtape/transcript-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}

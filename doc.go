/*
Package saveguardian procedurally renders the Save Guardian application
icon: a shield carrying a cloud and a save disk on a round badge, drawn
once onto a 256px transparent master canvas and resampled down to the
usual icon sizes. The whole set is exported as a multi resolution .ico
container plus a standalone .png of the master.

The package ships a command line interface which regenerates the assets
in place. To check the supported commands type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"

		saveguardian "github.com/Arionyxx/save-guardian"
	)

	func main() {
		c := &saveguardian.Composer{
			Style: saveguardian.StyleDetailed,
		}

		rep, err := c.Generate(saveguardian.DefaultOps())
		if err != nil {
			fmt.Printf("Error generating the icon: %s", err.Error())
			return
		}
		fmt.Println("written:", rep.ICOPath, rep.ImgPath)
	}
*/
package saveguardian

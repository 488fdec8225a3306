/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mikeb26/marchmadness-bracketbot/fivethirtyeight"
)

// this program exists just to warm the web cache with the forecast page
// ahead of game-day simulation runs

func main() {
	ctx := context.Background()

	client := fivethirtyeight.NewClient(ctx)
	teams, forecast, err := client.FetchAll(ctx)
	if err != nil {
		log.Fatalf("cacheseed: unable to fetch forecast page: %v", err)
	}

	fmt.Printf("seeded %v teams\n", len(teams))
	if !forecast.Updated.IsZero() {
		fmt.Printf("forecast last updated %v\n",
			forecast.Updated.Format("2006-01-02 15:04"))
	}
}

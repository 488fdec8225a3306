/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "marchmadness-bracketbot/0.4.0 (+https://github.com/mikeb26/marchmadness-bracketbot)"
	ForecastURL    = "https://projects.fivethirtyeight.com/2022-march-madness-predictions/"
	WebCacheBucket = "bopmatic-marchmadness-bracketbot-prod-webcache"

	// Companion browser-automation service which clicks bracket nodes
	// on our behalf; see the automate package.
	DefaultClickerEndpoint = "http://localhost:4444"
)

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules holds the built-in replacement rules for the Home page.
package rules

import (
	"github.com/walteh/i18nsub/pkg/text"
)

// DefaultTarget is the file rewritten when nothing else is configured
const DefaultTarget = "src/pages/Home.tsx"

// 📋 Home returns the Home page rules in application order.
// The slice is freshly allocated on each call.
func Home() []text.Rule {
	return []text.Rule{
		// hero
		{Section: "hero", Pattern: "Find Your Dream Home", Replacement: "{t.pages.home.hero.title}"},
		{Section: "hero", Pattern: "Discover the perfect property with our comprehensive real estate\n            platform", Replacement: "{t.pages.home.hero.subtitle}"},
		{Section: "hero", Pattern: "Start Your Property Search", Replacement: "{t.pages.home.hero.searchStartLabel}"},
		{Section: "hero", Pattern: `label="Location"`, Replacement: `label={t.pages.home.hero.location}`},

		// search button
		{Section: "search", Pattern: ">Search Properties<", Replacement: ">{t.pages.common.searchProperties}<"},

		// stats labels
		{Section: "stats", Pattern: "Properties Listed", Replacement: "{t.pages.home.stats.propertiesLabel}"},
		{Section: "stats", Pattern: "Expert Agents", Replacement: "{t.pages.home.stats.agentsLabel}"},
		{Section: "stats", Pattern: "Cities Covered", Replacement: "{t.pages.home.stats.citiesLabel}"},
		{Section: "stats", Pattern: "Customer Satisfaction", Replacement: "{t.pages.home.stats.satisfactionLabel}"},

		// featured properties
		{Section: "featured", Pattern: "<h2>Featured Properties</h2>", Replacement: "<h2>{t.pages.home.featured.title}</h2>"},
		{Section: "featured", Pattern: "For Sale", Replacement: "{t.pages.home.featured.forSale}"},
		{Section: "featured", Pattern: "For Rent", Replacement: "{t.pages.home.featured.forRent}"},

		// search filters
		{Section: "filters", Pattern: `label="Property Type"`, Replacement: `label={t.pages.home.featured.propertyType}`},
		{Section: "filters", Pattern: `label="Price Range"`, Replacement: `label={t.pages.home.hero.priceRange}`},
	}
}

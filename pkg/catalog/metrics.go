// Copyright (c) 2026, Larder Authors.
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

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larder_catalog_loads_total",
			Help: "Total number of catalog loads and reloads",
		},
	)

	catalogReloadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larder_catalog_reload_failures_total",
			Help: "Total number of failed catalog reloads",
		},
	)

	catalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "larder_catalog_recipes",
			Help: "Number of recipes in the currently loaded catalog",
		},
	)
)

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

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_solve_duration_seconds",
			Help:    "Duration of closure computations in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	solvePasses = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_solve_passes",
			Help:    "Number of fixpoint passes per closure computation",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

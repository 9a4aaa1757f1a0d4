// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

/*
Package models defines the JSON shapes served by the HTTP API.

Key Components:

  - APIResponse: the envelope every endpoint returns
  - RecommendationRecord: one movie in a similar, genre or popular listing
  - SimilarResponse, GenreResponse, CriteriaResponse: endpoint payloads
  - HealthStatus, ReadinessStatus: operational payloads

Domain types (corpus movies, catalog details) live in their own packages;
this package only adds the wire-level records built from them.
*/
package models

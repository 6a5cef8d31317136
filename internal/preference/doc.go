// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package preference holds the user's preference selection.

A Selection has four independent facets:

  - tags: multi-select, toggled on and off with ToggleTag
  - style, season, duration: single-select, replaced with SelectStyle,
    SelectSeason and SelectDuration

The selection is owned by the caller and passed into the pure scoring
functions of package recommend. It performs no validation: identifiers that
do not exist in the catalog are kept and simply never match.

Snapshot is the serializable form used by the HTTP API, the CLI and the
session stores.
*/
package preference

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prettyprint renders captured command trees for people.
package prettyprint

// SPDX-License-Identifier: MPL-2.0

// Package platform provides OS name constants shared across packages.
package platform

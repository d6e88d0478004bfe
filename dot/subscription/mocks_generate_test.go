// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

//go:generate mockgen -destination=mock_handler_test.go -package $GOPACKAGE . Handler

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package regdump parses the register dumps printed by the MSP430 simulator.
//
// A dump is a table of register entries, each preceded by at least one
// space and formatted as "(NAME: hex)", with an optional space after the
// opening parenthesis:
//
//	    ( PC: 0ffff)  ( R4: 0ffff)  ( R8: 0ffff)  (R12: 0ffff)
//	    ( SP: 0ffff)  ( R5: 0ffff)  ( R9: 0ffff)  (R13: 0ffff)
//
// Register names are made of A-Z and 0-9, values of lowercase hex digits.
// Text that does not match an entry is ignored. The first empty line ends
// the dump; nothing after it is examined.
package regdump

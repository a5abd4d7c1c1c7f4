package regdump

// Sample is a complete dump as printed by the simulator, with every
// register set to 0xffff.
const Sample = `     ( PC: 0ffff)  ( R4: 0ffff)  ( R8: 0ffff)  (R12: 0ffff)
    ( SP: 0ffff)  ( R5: 0ffff)  ( R9: 0ffff)  (R13: 0ffff)
    ( SR: 0ffff)  ( R6: 0ffff)  (R10: 0ffff)  (R14: 0ffff)
    ( R3: 0ffff)  ( R7: 0ffff)  (R11: 0ffff)  (R15: 0ffff)
`

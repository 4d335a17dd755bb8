package main

const configurationHelp = `
Configuration string: a complete machine setting on one line.

For example: A II:10-I:3-III:20 AB:CD
    1) A - reflector (A, B or C)
    2) II:10-I:3-III:20 - rotors, the reflector side first
        a) II:10 - rotor II next to the reflector, at position 10
        b) I:3 - rotor I in the middle, at position 3
        c) III:20 - rotor III at position 20, stepping on every letter
    3) AB:CD - plugboard (optional)
        a) AB - plug A to B
        b) CD - plug C to D

Rotors are I to VIII, positions 0 to 25 (0 when omitted).

Valid configuration strings:
    1) A II:10-I:3-III:20 AB:CD
    2) A II:10-I:3-III:20
    3) A II-I-III (same as A II:0-I:0-III:0)
    4) A I-I-I
    5) B IV
    6) C V:25

Invalid configuration strings:
    1) II:10-I:3-III:20 AB:CD (reflector must be specified)
    2) A I:30-II:0 (30 >= 26)
    3) A I-II-III AA (a letter cannot be plugged to itself)
    4) C I-II-III AB:BD (B is plugged twice)
`

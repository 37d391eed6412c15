// Package huffcode implements Huffman codes built from symbol frequencies.
// Codes are represented as strings of '0' and '1' characters, one character
// per bit, which keeps the encoded form printable and easy to inspect.
//
// Build constructs an Engine from an ordered frequency table.  The Engine
// can then Encode sequences of symbols into bit strings, Decode bit strings
// back into symbols, and Report the code assigned to every symbol.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952.
//
package huffcode

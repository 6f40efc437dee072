/*
Package sprite implements a lossless codec for small indexed-color sprite
sheets.

An Image is a row-major grid of RGBA pixels with a declared width. Encode
replaces every distinct color with a palette id, assigned in first-seen scan
order, and collapses runs of the all-zero background pixel into run tokens.
Decode validates and replays that stream back into an Image.

The codec is generic over two unsigned widths: D sizes the width and height
fields and P sizes palette ids. The largest value of P is reserved as the
run escape, so a sheet may use at most max(P)-1 distinct non-background
colors.

Encoded sheets can optionally be wrapped in a block container with LZ4 or
zstd compression (see Pack and EncodeBlock).
*/
package sprite

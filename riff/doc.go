// SPDX-License-Identifier: EPL-2.0

// Package riff reads Resource Interchange File Format containers.
//
// A RIFF stream is a tree of chunks. Every chunk starts with a four character
// code and a little-endian 32-bit length; RIFF and LIST chunks add a four
// character sub-type and hold further chunks until their length runs out.
//
// # Reading Chunks
//
// NewReader parses the outermost header and returns a Reader bounded to that
// chunk's body. Nested chunks are opened one at a time with Next (or Each):
//
//	root, err := riff.NewReader(file)
//	if err != nil {
//	    return err
//	}
//	defer root.Close()
//
//	for {
//	    ck, err := root.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ck.ID(), ck.Type(), ck.Size())
//	}
//
// Opening a chunk finishes the previous sibling, skipping whatever the caller
// left unread, so traversal is always sequential and never overlaps.
//
// # Bounds
//
// Every read is checked against the chunk's remaining length before it is
// forwarded to the parent chunk and, eventually, to the underlying stream.
// A chunk therefore never reads into its sibling even when the stream has
// more data. Reads that need more bytes than remain fail with
// ErrUnexpectedEOF; headers cut off mid-way fail with ErrMalformedStream.
//
// # Padding
//
// Zero bytes in front of a chunk header are skipped. A chunk position that
// holds only padding up to the end of its parent is reported as io.EOF by
// Next, and as a Reader whose Valid method returns false by NewReader.
package riff

// Package pixel extracts DICOM pixel data into Go's standard image types.
//
// Scope is deliberately narrower than the teacher's original package
// ([_examples/codeninja55-go-radx/dicom/pixel], which also decodes RLE and
// JPEG-family compressed transfer syntaxes via registered codecs): this
// system delegates pixel decoding and image transcoding to an image
// library outright (spec §1 non-goal), so only the four uncompressed
// (native) transfer syntaxes are registered here. Extract still returns
// *TransferSyntaxError for anything else, the same way the teacher's
// GetDecoder does when no codec is registered for a UID.
package pixel

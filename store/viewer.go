package store

// headerSize is the length of the fixed HTML+JS viewer preamble that
// occupies the front of the host-visible file. The final bytes of the
// array are the literal marker "<!--FS_START", aligned so that its
// closing byte lands on startAddress.
const headerSize = 2048

// fsStartMarker terminates the viewer preamble. The embedded script
// locates the metadata region by splitting the document on this marker.
const fsStartMarker = "<!--FS_START"

// viewerHeader is the preloaded HTML document with the embedded
// JavaScript viewer, reproduced byte for byte. When the host opens the
// pseudo-file in a browser, this script parses the metadata, journal
// and CSV data that follow it and renders the log as a table.
var viewerHeader = [headerSize]byte{
	0x3c, 0x68, 0x74, 0x6d, 0x6c, 0x20, 0x69, 0x64, 0x20, 0x3d, 0x20, 0x22, 0x68, 0x74, 0x6d, 0x22,
	0x3e, 0x3c, 0x68, 0x65, 0x61, 0x64, 0x3e, 0x3c, 0x73, 0x74, 0x79, 0x6c, 0x65, 0x3e, 0x68, 0x74,
	0x6d, 0x6c, 0x2c, 0x62, 0x6f, 0x64, 0x79, 0x7b, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x3a, 0x31,
	0x65, 0x6d, 0x3b, 0x66, 0x6f, 0x6e, 0x74, 0x2d, 0x66, 0x61, 0x6d, 0x69, 0x6c, 0x79, 0x3a, 0x73,
	0x61, 0x6e, 0x73, 0x2d, 0x73, 0x65, 0x72, 0x69, 0x66, 0x7d, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x7b,
	0x62, 0x6f, 0x72, 0x64, 0x65, 0x72, 0x2d, 0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x70, 0x73, 0x65, 0x3a,
	0x63, 0x6f, 0x6c, 0x6c, 0x61, 0x70, 0x73, 0x65, 0x3b, 0x77, 0x69, 0x64, 0x74, 0x68, 0x3a, 0x35,
	0x30, 0x25, 0x7d, 0x74, 0x64, 0x2c, 0x74, 0x68, 0x7b, 0x62, 0x6f, 0x72, 0x64, 0x65, 0x72, 0x3a,
	0x31, 0x70, 0x78, 0x20, 0x73, 0x6f, 0x6c, 0x69, 0x64, 0x20, 0x23, 0x64, 0x64, 0x64, 0x3b, 0x70,
	0x61, 0x64, 0x64, 0x69, 0x6e, 0x67, 0x3a, 0x38, 0x70, 0x78, 0x7d, 0x74, 0x72, 0x3a, 0x6e, 0x74,
	0x68, 0x2d, 0x63, 0x68, 0x69, 0x6c, 0x64, 0x28, 0x65, 0x76, 0x65, 0x6e, 0x29, 0x7b, 0x62, 0x61,
	0x63, 0x6b, 0x67, 0x72, 0x6f, 0x75, 0x6e, 0x64, 0x2d, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x3a, 0x23,
	0x66, 0x32, 0x66, 0x32, 0x66, 0x32, 0x7d, 0x74, 0x72, 0x3a, 0x68, 0x6f, 0x76, 0x65, 0x72, 0x7b,
	0x62, 0x61, 0x63, 0x6b, 0x67, 0x72, 0x6f, 0x75, 0x6e, 0x64, 0x2d, 0x63, 0x6f, 0x6c, 0x6f, 0x72,
	0x3a, 0x23, 0x64, 0x64, 0x64, 0x7d, 0x74, 0x68, 0x7b, 0x70, 0x61, 0x64, 0x64, 0x69, 0x6e, 0x67,
	0x2d, 0x74, 0x6f, 0x70, 0x3a, 0x31, 0x32, 0x70, 0x78, 0x3b, 0x70, 0x61, 0x64, 0x64, 0x69, 0x6e,
	0x67, 0x2d, 0x62, 0x6f, 0x74, 0x74, 0x6f, 0x6d, 0x3a, 0x31, 0x32, 0x70, 0x78, 0x3b, 0x74, 0x65,
	0x78, 0x74, 0x2d, 0x61, 0x6c, 0x69, 0x67, 0x6e, 0x3a, 0x6c, 0x65, 0x66, 0x74, 0x3b, 0x62, 0x61,
	0x63, 0x6b, 0x67, 0x72, 0x6f, 0x75, 0x6e, 0x64, 0x2d, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x3a, 0x23,
	0x34, 0x63, 0x61, 0x66, 0x35, 0x30, 0x3b, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x3a, 0x77, 0x68, 0x69,
	0x74, 0x65, 0x7d, 0x3c, 0x2f, 0x73, 0x74, 0x79, 0x6c, 0x65, 0x3e, 0x3c, 0x2f, 0x68, 0x65, 0x61,
	0x64, 0x3e, 0x0d, 0x0a, 0x3c, 0x48, 0x32, 0x3e, 0x6d, 0x69, 0x63, 0x72, 0x6f, 0x3a, 0x62, 0x69,
	0x74, 0x20, 0x44, 0x61, 0x74, 0x61, 0x20, 0x4c, 0x6f, 0x67, 0x3c, 0x2f, 0x48, 0x32, 0x3e, 0x3c,
	0x62, 0x6f, 0x64, 0x79, 0x20, 0x69, 0x64, 0x20, 0x3d, 0x20, 0x22, 0x62, 0x6f, 0x64, 0x22, 0x3e,
	0x3c, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x20, 0x6f, 0x6e, 0x63, 0x6c, 0x69, 0x63, 0x6b, 0x3d,
	0x27, 0x64, 0x6f, 0x77, 0x6e, 0x6c, 0x6f, 0x61, 0x64, 0x5f, 0x66, 0x69, 0x6c, 0x65, 0x28, 0x22,
	0x6d, 0x69, 0x63, 0x72, 0x6f, 0x62, 0x69, 0x74, 0x2e, 0x63, 0x73, 0x76, 0x22, 0x29, 0x27, 0x20,
	0x69, 0x64, 0x3d, 0x22, 0x64, 0x6c, 0x6f, 0x61, 0x64, 0x22, 0x3e, 0x44, 0x6f, 0x77, 0x6e, 0x6c,
	0x6f, 0x61, 0x64, 0x3c, 0x2f, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x3e, 0x3c, 0x62, 0x75, 0x74,
	0x74, 0x6f, 0x6e, 0x20, 0x6f, 0x6e, 0x63, 0x6c, 0x69, 0x63, 0x6b, 0x3d, 0x27, 0x6e, 0x61, 0x76,
	0x69, 0x67, 0x61, 0x74, 0x6f, 0x72, 0x2e, 0x63, 0x6c, 0x69, 0x70, 0x62, 0x6f, 0x61, 0x72, 0x64,
	0x2e, 0x77, 0x72, 0x69, 0x74, 0x65, 0x54, 0x65, 0x78, 0x74, 0x28, 0x6c, 0x6f, 0x67, 0x44, 0x61,
	0x74, 0x61, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x63, 0x65, 0x28, 0x2f, 0x5c, 0x2c, 0x2f, 0x67,
	0x69, 0x2c, 0x20, 0x22, 0x5c, 0x74, 0x22, 0x29, 0x29, 0x27, 0x3e, 0x43, 0x6f, 0x70, 0x79, 0x3c,
	0x2f, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x3e, 0x3c, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x20,
	0x6f, 0x6e, 0x63, 0x6c, 0x69, 0x63, 0x6b, 0x3d, 0x27, 0x61, 0x6c, 0x65, 0x72, 0x74, 0x28, 0x22,
	0x50, 0x6c, 0x65, 0x61, 0x73, 0x65, 0x20, 0x75, 0x6e, 0x70, 0x6c, 0x75, 0x67, 0x20, 0x79, 0x6f,
	0x75, 0x72, 0x20, 0x6d, 0x69, 0x63, 0x72, 0x6f, 0x3a, 0x62, 0x69, 0x74, 0x2c, 0x20, 0x74, 0x68,
	0x65, 0x6e, 0x20, 0x70, 0x6c, 0x75, 0x67, 0x20, 0x69, 0x74, 0x20, 0x62, 0x61, 0x63, 0x6b, 0x20,
	0x69, 0x6e, 0x20, 0x61, 0x6e, 0x64, 0x20, 0x72, 0x65, 0x2d, 0x6f, 0x70, 0x65, 0x6e, 0x20, 0x74,
	0x68, 0x69, 0x73, 0x20, 0x66, 0x69, 0x6c, 0x65, 0x22, 0x29, 0x27, 0x3e, 0x55, 0x70, 0x64, 0x61,
	0x74, 0x65, 0x20, 0x44, 0x61, 0x74, 0x61, 0x3c, 0x2f, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x3e,
	0x3c, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x20, 0x6f, 0x6e, 0x63, 0x6c, 0x69, 0x63, 0x6b, 0x3d,
	0x27, 0x61, 0x6c, 0x65, 0x72, 0x74, 0x28, 0x22, 0x59, 0x6f, 0x75, 0x72, 0x20, 0x63, 0x6f, 0x64,
	0x65, 0x20, 0x6f, 0x6e, 0x20, 0x74, 0x68, 0x65, 0x20, 0x6d, 0x69, 0x63, 0x72, 0x6f, 0x3a, 0x62,
	0x69, 0x74, 0x20, 0x6d, 0x75, 0x73, 0x74, 0x20, 0x63, 0x6c, 0x65, 0x61, 0x72, 0x20, 0x74, 0x68,
	0x65, 0x20, 0x6c, 0x6f, 0x67, 0x20, 0x75, 0x73, 0x69, 0x6e, 0x67, 0x20, 0x74, 0x68, 0x65, 0x20,
	0x5c, 0x22, 0x66, 0x6f, 0x72, 0x6d, 0x61, 0x74, 0x20, 0x64, 0x72, 0x69, 0x76, 0x65, 0x5c, 0x22,
	0x20, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x22, 0x29, 0x27, 0x3e, 0x43, 0x6c, 0x65, 0x61,
	0x72, 0x20, 0x6c, 0x6f, 0x67, 0x3c, 0x2f, 0x62, 0x75, 0x74, 0x74, 0x6f, 0x6e, 0x3e, 0x3c, 0x74,
	0x61, 0x62, 0x6c, 0x65, 0x20, 0x69, 0x64, 0x3d, 0x22, 0x64, 0x61, 0x74, 0x61, 0x2d, 0x76, 0x69,
	0x65, 0x77, 0x22, 0x3e, 0x3c, 0x2f, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x3e, 0x0d, 0x0a, 0x3c, 0x73,
	0x63, 0x72, 0x69, 0x70, 0x74, 0x3e, 0x76, 0x61, 0x72, 0x20, 0x6c, 0x6f, 0x67, 0x44, 0x61, 0x74,
	0x61, 0x3b, 0x66, 0x75, 0x6e, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x20, 0x73, 0x74, 0x61, 0x72, 0x74,
	0x28, 0x29, 0x7b, 0x6c, 0x65, 0x74, 0x20, 0x73, 0x74, 0x75, 0x66, 0x66, 0x3d, 0x64, 0x6f, 0x63,
	0x75, 0x6d, 0x65, 0x6e, 0x74, 0x2e, 0x67, 0x65, 0x74, 0x45, 0x6c, 0x65, 0x6d, 0x65, 0x6e, 0x74,
	0x42, 0x79, 0x49, 0x64, 0x28, 0x22, 0x68, 0x74, 0x6d, 0x22, 0x29, 0x3b, 0x6c, 0x65, 0x74, 0x20,
	0x72, 0x61, 0x77, 0x3d, 0x28, 0x73, 0x74, 0x75, 0x66, 0x66, 0x2e, 0x6f, 0x75, 0x74, 0x65, 0x72,
	0x48, 0x54, 0x4d, 0x4c, 0x29, 0x2e, 0x73, 0x70, 0x6c, 0x69, 0x74, 0x28, 0x22, 0x3c, 0x21, 0x2d,
	0x2d, 0x46, 0x53, 0x5f, 0x53, 0x54, 0x41, 0x52, 0x54, 0x22, 0x29, 0x5b, 0x32, 0x5d, 0x3b, 0x69,
	0x66, 0x28, 0x72, 0x61, 0x77, 0x2e, 0x73, 0x75, 0x62, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x28,
	0x30, 0x2c, 0x31, 0x37, 0x29, 0x3d, 0x3d, 0x22, 0x55, 0x42, 0x49, 0x54, 0x5f, 0x4c, 0x4f, 0x47,
	0x5f, 0x46, 0x53, 0x5f, 0x56, 0x5f, 0x30, 0x30, 0x31, 0x22, 0x29, 0x7b, 0x6c, 0x65, 0x74, 0x20,
	0x6c, 0x3d, 0x30, 0x3b, 0x6c, 0x65, 0x74, 0x20, 0x6c, 0x6f, 0x67, 0x45, 0x6e, 0x64, 0x3d, 0x70,
	0x61, 0x72, 0x73, 0x65, 0x49, 0x6e, 0x74, 0x28, 0x72, 0x61, 0x77, 0x2e, 0x73, 0x75, 0x62, 0x73,
	0x74, 0x72, 0x69, 0x6e, 0x67, 0x28, 0x31, 0x38, 0x2c, 0x32, 0x39, 0x29, 0x2c, 0x31, 0x36, 0x29,
	0x3b, 0x6c, 0x65, 0x74, 0x20, 0x64, 0x61, 0x74, 0x61, 0x53, 0x74, 0x61, 0x72, 0x74, 0x3d, 0x70,
	0x61, 0x72, 0x73, 0x65, 0x49, 0x6e, 0x74, 0x28, 0x72, 0x61, 0x77, 0x2e, 0x73, 0x75, 0x62, 0x73,
	0x74, 0x72, 0x69, 0x6e, 0x67, 0x28, 0x32, 0x39, 0x2c, 0x34, 0x30, 0x29, 0x2c, 0x31, 0x36, 0x29,
	0x2d, 0x32, 0x30, 0x34, 0x38, 0x3b, 0x6c, 0x65, 0x74, 0x20, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61,
	0x6c, 0x3d, 0x31, 0x30, 0x32, 0x34, 0x3b, 0x6c, 0x65, 0x74, 0x20, 0x64, 0x61, 0x74, 0x61, 0x45,
	0x6e, 0x64, 0x3d, 0x30, 0x3b, 0x77, 0x68, 0x69, 0x6c, 0x65, 0x28, 0x6a, 0x6f, 0x75, 0x72, 0x6e,
	0x61, 0x6c, 0x21, 0x3d, 0x64, 0x61, 0x74, 0x61, 0x53, 0x74, 0x61, 0x72, 0x74, 0x29, 0x7b, 0x6c,
	0x65, 0x74, 0x20, 0x72, 0x3d, 0x70, 0x61, 0x72, 0x73, 0x65, 0x49, 0x6e, 0x74, 0x28, 0x72, 0x61,
	0x77, 0x2e, 0x73, 0x75, 0x62, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x28, 0x6a, 0x6f, 0x75, 0x72,
	0x6e, 0x61, 0x6c, 0x2c, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x2b, 0x38, 0x29, 0x2c, 0x31,
	0x36, 0x29, 0x3b, 0x69, 0x66, 0x28, 0x72, 0x3d, 0x3d, 0x72, 0x29, 0x7b, 0x64, 0x61, 0x74, 0x61,
	0x45, 0x6e, 0x64, 0x3d, 0x64, 0x61, 0x74, 0x61, 0x53, 0x74, 0x61, 0x72, 0x74, 0x2b, 0x72, 0x3b,
	0x62, 0x72, 0x65, 0x61, 0x6b, 0x7d, 0x6a, 0x6f, 0x75, 0x72, 0x6e, 0x61, 0x6c, 0x2b, 0x3d, 0x38,
	0x7d, 0x77, 0x68, 0x69, 0x6c, 0x65, 0x28, 0x72, 0x61, 0x77, 0x2e, 0x63, 0x68, 0x61, 0x72, 0x43,
	0x6f, 0x64, 0x65, 0x41, 0x74, 0x28, 0x64, 0x61, 0x74, 0x61, 0x45, 0x6e, 0x64, 0x29, 0x21, 0x3d,
	0x31, 0x36, 0x30, 0x29, 0x64, 0x61, 0x74, 0x61, 0x45, 0x6e, 0x64, 0x2b, 0x2b, 0x3b, 0x6c, 0x6f,
	0x67, 0x44, 0x61, 0x74, 0x61, 0x3d, 0x72, 0x61, 0x77, 0x2e, 0x73, 0x75, 0x62, 0x73, 0x74, 0x72,
	0x69, 0x6e, 0x67, 0x28, 0x64, 0x61, 0x74, 0x61, 0x53, 0x74, 0x61, 0x72, 0x74, 0x2c, 0x64, 0x61,
	0x74, 0x61, 0x45, 0x6e, 0x64, 0x29, 0x7d, 0x6c, 0x65, 0x74, 0x20, 0x74, 0x61, 0x62, 0x6c, 0x65,
	0x3d, 0x64, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x2e, 0x67, 0x65, 0x74, 0x45, 0x6c, 0x65,
	0x6d, 0x65, 0x6e, 0x74, 0x42, 0x79, 0x49, 0x64, 0x28, 0x22, 0x64, 0x61, 0x74, 0x61, 0x2d, 0x76,
	0x69, 0x65, 0x77, 0x22, 0x29, 0x3b, 0x6c, 0x65, 0x74, 0x20, 0x72, 0x6f, 0x77, 0x73, 0x3d, 0x6c,
	0x6f, 0x67, 0x44, 0x61, 0x74, 0x61, 0x2e, 0x73, 0x70, 0x6c, 0x69, 0x74, 0x28, 0x22, 0x5c, 0x6e,
	0x22, 0x29, 0x3b, 0x66, 0x6f, 0x72, 0x28, 0x6c, 0x65, 0x74, 0x20, 0x69, 0x3d, 0x30, 0x3b, 0x69,
	0x3c, 0x72, 0x6f, 0x77, 0x73, 0x2e, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68, 0x3b, 0x69, 0x2b, 0x2b,
	0x29, 0x7b, 0x6c, 0x65, 0x74, 0x20, 0x63, 0x65, 0x6c, 0x6c, 0x73, 0x3d, 0x72, 0x6f, 0x77, 0x73,
	0x5b, 0x69, 0x5d, 0x2e, 0x73, 0x70, 0x6c, 0x69, 0x74, 0x28, 0x22, 0x2c, 0x22, 0x29, 0x3b, 0x69,
	0x66, 0x28, 0x63, 0x65, 0x6c, 0x6c, 0x73, 0x2e, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68, 0x3e, 0x31,
	0x29, 0x7b, 0x6c, 0x65, 0x74, 0x20, 0x72, 0x6f, 0x77, 0x3d, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x2e,
	0x69, 0x6e, 0x73, 0x65, 0x72, 0x74, 0x52, 0x6f, 0x77, 0x28, 0x2d, 0x31, 0x29, 0x3b, 0x66, 0x6f,
	0x72, 0x28, 0x6c, 0x65, 0x74, 0x20, 0x6a, 0x3d, 0x30, 0x3b, 0x6a, 0x3c, 0x63, 0x65, 0x6c, 0x6c,
	0x73, 0x2e, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68, 0x3b, 0x6a, 0x2b, 0x2b, 0x29, 0x7b, 0x6c, 0x65,
	0x74, 0x20, 0x63, 0x65, 0x6c, 0x6c, 0x3d, 0x72, 0x6f, 0x77, 0x2e, 0x69, 0x6e, 0x73, 0x65, 0x72,
	0x74, 0x43, 0x65, 0x6c, 0x6c, 0x28, 0x2d, 0x31, 0x29, 0x3b, 0x63, 0x65, 0x6c, 0x6c, 0x2e, 0x69,
	0x6e, 0x6e, 0x65, 0x72, 0x48, 0x54, 0x4d, 0x4c, 0x3d, 0x63, 0x65, 0x6c, 0x6c, 0x73, 0x5b, 0x6a,
	0x5d, 0x7d, 0x7d, 0x7d, 0x7d, 0x66, 0x75, 0x6e, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x20, 0x64, 0x6f,
	0x77, 0x6e, 0x6c, 0x6f, 0x61, 0x64, 0x5f, 0x66, 0x69, 0x6c, 0x65, 0x28, 0x61, 0x29, 0x7b, 0x76,
	0x61, 0x72, 0x20, 0x62, 0x3d, 0x6e, 0x65, 0x77, 0x20, 0x42, 0x6c, 0x6f, 0x62, 0x28, 0x5b, 0x6c,
	0x6f, 0x67, 0x44, 0x61, 0x74, 0x61, 0x5d, 0x2c, 0x7b, 0x74, 0x79, 0x70, 0x65, 0x3a, 0x22, 0x74,
	0x65, 0x78, 0x74, 0x2f, 0x70, 0x6c, 0x61, 0x69, 0x6e, 0x22, 0x7d, 0x29, 0x3b, 0x76, 0x61, 0x72,
	0x20, 0x63, 0x3d, 0x64, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x2e, 0x63, 0x72, 0x65, 0x61,
	0x74, 0x65, 0x45, 0x6c, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x28, 0x27, 0x61, 0x27, 0x29, 0x3b, 0x63,
	0x2e, 0x64, 0x6f, 0x77, 0x6e, 0x6c, 0x6f, 0x61, 0x64, 0x3d, 0x61, 0x3b, 0x63, 0x2e, 0x68, 0x72,
	0x65, 0x66, 0x3d, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x2e, 0x55, 0x52, 0x4c, 0x2e, 0x63, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x4f, 0x62, 0x6a, 0x65, 0x63, 0x74, 0x55, 0x52, 0x4c, 0x28, 0x62, 0x29,
	0x3b, 0x63, 0x2e, 0x63, 0x6c, 0x69, 0x63, 0x6b, 0x28, 0x29, 0x3b, 0x63, 0x2e, 0x72, 0x65, 0x6d,
	0x6f, 0x76, 0x65, 0x28, 0x29, 0x7d, 0x76, 0x61, 0x72, 0x20, 0x73, 0x74, 0x75, 0x66, 0x66, 0x3d,
	0x64, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x2e, 0x67, 0x65, 0x74, 0x45, 0x6c, 0x65, 0x6d,
	0x65, 0x6e, 0x74, 0x42, 0x79, 0x49, 0x64, 0x28, 0x22, 0x62, 0x6f, 0x64, 0x22, 0x29, 0x3b, 0x73,
	0x74, 0x75, 0x66, 0x66, 0x2e, 0x6f, 0x6e, 0x6c, 0x6f, 0x61, 0x64, 0x3d, 0x73, 0x74, 0x61, 0x72,
	0x74, 0x3b, 0x3c, 0x2f, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x3e, 0x0d, 0x0a, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x0d, 0x0a, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x20, 0x20, 0x0d, 0x0a, 0x3c, 0x21, 0x2d, 0x2d, 0x46, 0x53, 0x5f, 0x53, 0x54, 0x41, 0x52, 0x54,
}

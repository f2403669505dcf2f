// This package provides a set of structs and functions which are used
// to put IP addresses found in arbitrary text logs on a map.
//
// maplib is core of the ipmapper project. You can treat the rest of
// the application as an _example_ on how to use this library: how to
// wire providers, how to serve a web UI, how to render a standalone
// map page from CLI.
//
// Mapper is a main entity of the maplib. It extracts candidate IPs
// from a text, geolocates them one by one with a chosen Provider and
// builds a MapView: points, lines from the viewer location to each
// point and a camera position. Nothing is cached between runs, each
// run starts from scratch.
package maplib

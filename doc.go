// ipmapper puts IP addresses found in arbitrary text logs on a map.
//
// Idea is simple: you have a log with a bunch of IP addresses in it.
// And you want to see where these addresses are, relative to you. So
// you upload this log, choose a geolocation service and get a map with
// a line from your own location to each address.
//
// Tool itself is organized into 3 logical parts:
//
// # Maplib
//
// maplib is a main package of the application which contains Mapper
// struct and main logic: IP extraction, sequential geolocation, map
// view and a web UI which acts as http.Handler.
//
// # Providers
//
// This package has implementations of supported geolocation services:
// ipinfo.io, ip-api.com and ipgeolocation.io.
//
// # Ipmapper
//
// A main package itself wires both maplib and providers. It has 2
// commands: serve starts web UI, render makes a standalone HTML page
// out of a log file.
package main

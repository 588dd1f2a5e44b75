// Package model defines stable boundary types for API layers.
//
// Name identity (namehash nodes and labelhashes) is unaffected by any
// projection. These structs are the only types intended for direct JSON
// serialization by consumers.
package model

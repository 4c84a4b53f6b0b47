// Package interchange imports & defines an L-System from an external format
package interchange

import lsystem "github.com/Bunny83/LSystem"

type Format interface {
	Import(p *lsystem.Parser) (*lsystem.System, error)
}

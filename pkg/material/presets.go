package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Ivory is a pale, slightly glossy surface
func Ivory() Material {
	m := Default()
	m.Diffuse = core.NewColor(0.4, 0.4, 0.3).Multiply(0.6)
	m.Specular = core.White().Multiply(0.3)
	m.Shininess = 50
	m.Reflectiveness = 0.1
	return m
}

// Glass is a mostly transparent dielectric with a faint reflection
func Glass() Material {
	m := Default()
	m.Specular = core.White().Multiply(0.5)
	m.Shininess = 125
	m.Reflectiveness = 0.1
	m.Transparency = 0.8
	m.RefractiveIndex = 1.5
	return m
}

// RedRubber is a dull red surface
func RedRubber() Material {
	m := Default()
	m.Diffuse = core.NewColor(0.4, 0.1, 0.1).Multiply(0.9)
	m.Specular = core.White().Multiply(0.1)
	m.Shininess = 10
	return m
}

// Mirror reflects most incoming light with a very tight highlight
func Mirror() Material {
	m := Default()
	m.Specular = core.White().Multiply(10)
	m.Shininess = 1425
	m.Reflectiveness = 0.8
	return m
}

// BasicMatt is a base for diffuse walls; set Diffuse with WithDiffuse
func BasicMatt() Material {
	m := Default()
	m.Specular = core.White().Multiply(0.05)
	m.Shininess = 1
	return m
}

// BasicShiny is a base for polished objects; set Diffuse with WithDiffuse
func BasicShiny() Material {
	m := Default()
	m.Specular = core.White().Multiply(0.9)
	m.Shininess = 100
	m.Reflectiveness = 0.2
	return m
}

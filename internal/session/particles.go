package session

import "github.com/vovakirdan/witherdream/internal/core"

// Particle is a mote of dust trailing a boosted player.
type Particle struct {
	Pos  core.Vec
	Vel  core.Vec
	Life float64 // Seconds left
}

// emitDust adds one particle at p with a random velocity in [-speed, speed)
// on each axis.
func (s *Session) emitDust(p core.Vec) {
	speed := s.cfg.Dust.Speed
	vel := core.V(
		(s.rng.Float64()*2-1)*speed,
		(s.rng.Float64()*2-1)*speed,
	)
	s.particles = append(s.particles, Particle{Pos: p, Vel: vel, Life: s.cfg.Dust.Life})
}

// updateParticles moves particles and drops the expired ones in place.
func (s *Session) updateParticles(dt float64) {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(s.particles[len(live):])
	s.particles = live
}

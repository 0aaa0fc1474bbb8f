package state

import (
	"iter"
	"maps"
	"slices"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// JointAction assigns one action to each acting unit for a single ply
type JointAction map[int]core.Action

// Child is an edge of the search tree together with the state it leads to
type Child struct {
	Actions JointAction
	State   *GameState
}

// JointActions lazily yields the Cartesian product of the per-unit action
// lists, one action per unit. Units whose list is empty are skipped. The last
// unit varies fastest. Nothing is yielded when no unit can act.
func JointActions(ids []int, options [][]core.Action) iter.Seq[JointAction] {
	return func(yield func(JointAction) bool) {
		var actors []int
		var lists [][]core.Action
		for i, id := range ids {
			if i < len(options) && len(options[i]) > 0 {
				actors = append(actors, id)
				lists = append(lists, options[i])
			}
		}
		if len(actors) == 0 {
			return
		}

		odometer := make([]int, len(actors))
		for {
			joint := make(JointAction, len(actors))
			for i, id := range actors {
				joint[id] = lists[i][odometer[i]]
			}
			if !yield(joint) {
				return
			}

			i := len(odometer) - 1
			for ; i >= 0; i-- {
				odometer[i]++
				if odometer[i] < len(lists[i]) {
					break
				}
				odometer[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// TeamJointActions yields every joint action available to a team in s
func (s *GameState) TeamJointActions(team core.Team) iter.Seq[JointAction] {
	ids := *s.roster(team)
	options := make([][]core.Action, len(ids))
	for i, id := range ids {
		options[i] = s.LegalActions(id)
	}
	return JointActions(ids, options)
}

// Children expands s into one child per joint action. In SideToMove mode only
// the side to move acts; in BothSides mode the footmen's joint actions are
// followed by the archers'.
func (s *GameState) Children() []Child {
	teams := []core.Team{s.turn}
	if s.mode == BothSides {
		teams = core.Teams
	}

	var children []Child
	for _, team := range teams {
		for joint := range s.TeamJointActions(team) {
			children = append(children, Child{Actions: joint, State: s.Apply(joint)})
		}
	}
	return children
}

// Apply returns the next ply with joint applied. Moves add the direction
// vector to the mover's position. Attacks subtract the attacker's damage from
// the target, which is removed everywhere once its hit points reach zero.
// Actions by or against units that are already gone are ignored.
func (s *GameState) Apply(joint JointAction) *GameState {
	child := s.next()
	for _, id := range slices.Sorted(maps.Keys(joint)) {
		if _, alive := child.positions[id]; !alive {
			continue
		}
		switch a := joint[id].(type) {
		case *core.MoveAction:
			child.positions[id] = child.positions[id].Move(a.Direction)
		case *core.AttackAction:
			hp, alive := child.hp[a.TargetID]
			if !alive {
				continue
			}
			hp -= s.templates[s.teams[id]].Damage
			if hp <= 0 {
				child.remove(a.TargetID)
				continue
			}
			child.hp[a.TargetID] = hp
		}
	}
	return child
}

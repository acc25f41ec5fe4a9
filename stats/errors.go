package stats

import "fmt"

func errDuplicateRobotKey(key RobotKey) error {
	return fmt.Errorf("stats: duplicate robot stats key %+v", key)
}

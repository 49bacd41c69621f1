package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) resetPassword(id, password string) error {
	if err := cli.groupSvc.ResetPassword(context.Background(), id, password); err != nil {
		return err
	}
	fmt.Printf("password reset for group %s\n", id)
	return nil
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/laradl/laradl/auth"
	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("email", "e", "", "Account email, prompted for when missing")
	loginCmd.Flags().Bool("no-verify", false, "Store the credentials without signing in first")
}

// loginCmd stores the account email in the config and the password in the system keyring.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the Laracasts account used for downloading",
	Long: `Prompt for the Laracasts account, verify it by signing in, then store the email in the config file
and the password in the system keyring.`,
	Run: func(cmd *cobra.Command, args []string) {
		email := lo.Must(cmd.Flags().GetString("email"))
		if email == "" {
			email = viper.GetString(key.LaracastsEmail)
		}

		if email == "" {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Email:",
			}, &email, survey.WithValidator(survey.Required)))
		}

		var password string
		handleErr(survey.AskOne(&survey.Password{
			Message: "Password:",
		}, &password, survey.WithValidator(survey.Required)))

		viper.Set(key.LaracastsEmail, email)
		viper.Set(key.LaracastsPassword, password)

		if !lo.Must(cmd.Flags().GetBool("no-verify")) {
			_, err := newSession(cmd.Context(), newClient(), true)
			handleErr(err)
		}

		// The password lives in the keyring only.
		viper.Set(key.LaracastsPassword, "")
		handleErr(auth.SetPassword(email, password))
		handleErr(writeConfig())

		fmt.Printf(
			"%s logged in as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(email),
		)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// logoutCmd forgets the stored account.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored Laracasts account",
	Run: func(cmd *cobra.Command, args []string) {
		email := viper.GetString(key.LaracastsEmail)
		if email == "" {
			handleErr(errors.New("no account is stored"))
		}

		handleErr(auth.DeletePassword(email))
		viper.Set(key.LaracastsEmail, "")
		handleErr(writeConfig())

		fmt.Printf(
			"%s logged out %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(email),
		)
	},
}

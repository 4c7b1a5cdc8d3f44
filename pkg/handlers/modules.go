package handlers

import (
	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"

	"github.com/zuchzub/GroupGuard/pkg/config"
	"github.com/zuchzub/GroupGuard/pkg/core/db"
)

// LoadModules registers every command handler on the client. Moderation and
// management commands are wrapped with the role gate; the required role per
// command mirrors the severity of the action.
func LoadModules(c *telegram.Client) {
	_, _ = c.UpdatesGetState()
	setupGate(config.Conf.OwnerId)

	c.On("command:ping", pingHandler)
	c.On("command:start", startHandler)
	c.On("command:help", helpHandler)

	// Moderation.
	c.On("command:warn", requireRole(db.RoleAssistant, warnHandler))
	c.On("command:mute", requireRole(db.RoleAdmin, muteHandler))
	c.On("command:unmute", requireRole(db.RoleAdmin, unmuteHandler))
	c.On("command:kick", requireRole(db.RoleAdmin, kickHandler))
	c.On("command:ban", requireRole(db.RoleManager, banHandler))
	c.On("command:unban", requireRole(db.RoleManager, unbanHandler))

	// Roles. Only the group owner (or the bot owner) can reassign them.
	c.On("command:setassistant", requireRole(db.RoleOwner, setRoleHandler(db.RoleAssistant)))
	c.On("command:setadmin", requireRole(db.RoleOwner, setRoleHandler(db.RoleAdmin)))
	c.On("command:setmanager", requireRole(db.RoleOwner, setRoleHandler(db.RoleManager)))
	c.On("command:setowner", requireRole(db.RoleOwner, setRoleHandler(db.RoleOwner)))
	c.On("command:demote", requireRole(db.RoleOwner, demoteHandler))

	// Group settings.
	c.On("command:lock", requireRole(db.RoleAdmin, lockHandler))
	c.On("command:unlock", requireRole(db.RoleAdmin, unlockHandler))
	c.On("command:addfilter", requireRole(db.RoleAdmin, addFilterHandler))
	c.On("command:delfilter", requireRole(db.RoleAdmin, delFilterHandler))
	c.On("command:filters", listFiltersHandler)
	c.On("command:addbanname", requireRole(db.RoleManager, addBanNameHandler))
	c.On("command:delbanname", requireRole(db.RoleManager, delBanNameHandler))
	c.On("command:bannednames", banNamesHandler)

	// Stats.
	c.On("command:stats", requireRole(db.RoleAdmin, statsHandler))
	c.On("command:topusers", requireRole(db.RoleAdmin, topUsersHandler))
	c.On("command:sysstats", sysStatsHandler, telegram.FilterFunc(isDev))

	// Music.
	c.On("command:play", requireRole(db.RoleAdmin, playHandler))
	c.On("command:skip", requireRole(db.RoleAdmin, skipHandler))
	c.On("command:stop", requireRole(db.RoleAdmin, stopHandler))
	c.On("command:queue", requireRole(db.RoleAdmin, queueHandler))

	gologging.Debug("Handlers loaded successfully.")
}

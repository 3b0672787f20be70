// Package models defines the persisted todo document and its entities.
//
// A Document is the root of all state: users keyed by username, lists keyed
// by id, and the optional current list selection. It is loaded once, mutated
// in memory by the services package and written back in full after every
// change.
//
// Wire format (field names are part of the file format):
//
//	{
//	  "lists": {
//	    "list_<uuid>": {
//	      "name": "Groceries", "owner": "alice", "emoji": "📝",
//	      "created_at": "2024-05-01 10:00:00",
//	      "tasks": [{"id": "task_<uuid>", "text": "Milk", "completed": false,
//	                 "priority": "High", "created_at": "...", "completed_at": null,
//	                 "emoji": "•"}]
//	    }
//	  },
//	  "current_list": "list_<uuid>",
//	  "users": {"alice": {"password_hash": {"salt": "<b64>", "key": "<b64>"},
//	                      "created_at": "..."}}
//	}
package models
